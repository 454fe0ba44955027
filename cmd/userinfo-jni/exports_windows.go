//go:build cgo

package main

/*
#include "jni_windows.h"
*/
import "C"

import (
	"unsafe"
)

//export Java_com_izforge_izpack_util_win_UserInfo_isUserAnAdmin
func Java_com_izforge_izpack_util_win_UserInfo_isUserAnAdmin(env *C.JNIEnv, obj C.jobject) C.jboolean {
	return jboolean(sharedBridge().isUserAnAdmin())
}

//export Java_com_izforge_izpack_util_win_UserInfo_validatePassword
func Java_com_izforge_izpack_util_win_UserInfo_validatePassword(env *C.JNIEnv, obj C.jobject, username, domain, password C.jstring) C.jboolean {
	return jboolean(sharedBridge().validatePassword(
		javaString(env, username),
		javaString(env, domain),
		javaString(env, password),
	))
}

//export Java_com_izforge_izpack_util_win_UserInfo_listManagedServiceAccounts
func Java_com_izforge_izpack_util_win_UserInfo_listManagedServiceAccounts(env *C.JNIEnv, obj C.jobject) C.jobjectArray {
	names, ok := sharedBridge().managedServiceAccounts()
	if !ok {
		return nil
	}

	return javaStringArray(env, names)
}

func jboolean(b bool) C.jboolean {
	if b {
		return C.JNI_TRUE
	}
	return C.JNI_FALSE
}

// javaString copies s into Go memory and releases the Java characters before returning. A null s is empty.
func javaString(env *C.JNIEnv, s C.jstring) string {
	if s == nil {
		return ""
	}

	chars := C.userinfoStringChars(env, s)
	if chars == nil {
		// OutOfMemoryError is pending in the JVM
		return ""
	}
	defer C.userinfoReleaseStringChars(env, s, chars)

	n := int(C.userinfoStringLength(env, s))
	return decodeJChars(unsafe.Slice((*uint16)(unsafe.Pointer(chars)), n))
}

// javaStringArray returns a new String[] holding values, or nil with a Java exception pending.
func javaStringArray(env *C.JNIEnv, values []string) C.jobjectArray {
	arr := C.userinfoNewStringArray(env, C.jsize(len(values)))
	if arr == nil {
		return nil
	}

	for i, v := range values {
		u := encodeJChars(v)
		ok := C.userinfoSetStringElement(env, arr, C.jsize(i), (*C.jchar)(unsafe.Pointer(&u[0])), C.jsize(len(u)-1))
		if ok == C.JNI_FALSE {
			return nil
		}
	}

	return arr
}
